package frm2schema

import (
	"fmt"

	"github.com/tidwall/gjson"
)

func CheckMember(object gjson.Result, member string) error {
	if !object.Get(member).Exists() {
		return fmt.Errorf(`rules member %s not found`, member)
	}
	return nil
}
