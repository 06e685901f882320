package frm2schema

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	/** Smallest file that can plausibly hold a table definition. The
	fixed .frm header alone is larger than this. */
	FRM_MIN_SIZE = 100
)

type FrmFile struct {
	Path      string
	Reader    io.Reader
	Buf       *bytes.Buffer
	TableName string
}

// ReadFrm opens path, reads it fully and closes it before returning.
func ReadFrm(path string) (frm *FrmFile, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, IOError("ReadFrm", path, err)
	}
	defer file.Close()
	return NewFrmFile(file, path)
}

func NewFrmFile(r io.Reader, path string) (frm *FrmFile, err error) {
	frm = &FrmFile{
		Path:      path,
		Reader:    r,
		TableName: TableNameFromPath(path),
	}
	frm.Buf = bytes.NewBuffer(nil)

	_, err = io.Copy(frm.Buf, frm.Reader)
	if err != nil {
		return nil, IOError("NewFrmFile", path, err)
	}
	if frm.Buf.Len() < FRM_MIN_SIZE {
		return nil, FormatError("NewFrmFile", path, fmt.Sprintf(
			"file too short to be valid, expected at least %d bytes, got %d",
			FRM_MIN_SIZE, frm.Buf.Len()))
	}
	return frm, nil
}

func (frm *FrmFile) Data() []byte {
	return frm.Buf.Bytes()
}

/*
* Table name is the base name of the file without its extension,
* e.g. /var/lib/mysql/shop/orders.frm -> orders
 */
func TableNameFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	// a leading dot is part of the name, not an extension
	if strings.TrimLeft(name, ".") == "" {
		return base
	}
	return name
}
