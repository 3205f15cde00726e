// Package descriptor composes watch-only output descriptors from key origin
// fragments and script-type templates, and computes their checksums.
package descriptor

import (
	"fmt"
	"strings"
)

// Template is an ordered list of script wrapper functions, outermost first.
// "sh-wsh" parses to Template{"sh", "wsh"} and wraps an expression as
// sh(wsh(expr)).
type Template []string

var (
	P2WPKH       = Template{"wpkh"}
	NestedP2WPKH = Template{"sh", "wpkh"}
	P2PKH        = Template{"pkh"}
	P2WSH        = Template{"wsh"}
	NestedP2WSH  = Template{"sh", "wsh"}
	P2SH         = Template{"sh"}
)

// ParseTemplate turns a dash-separated script type like "sh-wsh" into a
// Template.
func ParseTemplate(scriptType string) Template {
	return Template(strings.Split(scriptType, "-"))
}

// String returns the dash-separated form of the template.
func (t Template) String() string {
	return strings.Join([]string(t), "-")
}

// IsMultisig returns whether the innermost wrapper hosts a script, ie. the
// template is meant for a multisig expression rather than a single key.
func (t Template) IsMultisig() bool {
	if len(t) <= 0 {
		return false
	}
	switch t[len(t)-1] {
	case "sh", "wsh":
		return true
	}
	return false
}

// wrap applies the template to an expression innermost-first, i.e. the
// template is traversed in reverse so that the first wrapper ends up
// outermost.
func (t Template) wrap(expr string) string {
	for i := len(t) - 1; i >= 0; i-- {
		expr = fmt.Sprintf("%s(%s)", t[i], expr)
	}
	return expr
}

// Single builds the receive and change branch descriptors for a
// single-signature wallet from one key origin fragment. Both descriptors are
// returned with a checksum suffix.
func Single(tpl Template, key string) (recvDesc, changeDesc string) {
	recvDesc = AddChecksum(tpl.wrap(key + "/0/*"))
	changeDesc = AddChecksum(tpl.wrap(key + "/1/*"))
	return
}

// Multi builds the receive and change branch descriptors for a multisig
// wallet. Member keys are joined in the order given by the caller; runtime
// key sorting is delegated to the node via the sortedmulti descriptor
// function. Both descriptors are returned with a checksum suffix.
func Multi(tpl Template, sigsRequired int, keys []string) (recvDesc, changeDesc string, err error) {
	if sigsRequired < 1 || sigsRequired > len(keys) {
		return "", "", fmt.Errorf(
			"required signatures must be between 1 and %d, got %d",
			len(keys), sigsRequired,
		)
	}
	recvKeys := make([]string, len(keys))
	changeKeys := make([]string, len(keys))
	for i, key := range keys {
		recvKeys[i] = key + "/0/*"
		changeKeys[i] = key + "/1/*"
	}
	recvDesc = AddChecksum(tpl.wrap(
		fmt.Sprintf("sortedmulti(%d,%s)", sigsRequired, strings.Join(recvKeys, ",")),
	))
	changeDesc = AddChecksum(tpl.wrap(
		fmt.Sprintf("sortedmulti(%d,%s)", sigsRequired, strings.Join(changeKeys, ",")),
	))
	return
}
