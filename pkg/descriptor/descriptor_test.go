package descriptor_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walletfleet/fleetd/pkg/descriptor"
)

const (
	xpub1 = "[aaaaaaaa/48h/0h/0h/2h]xpub661MyMwAqRbcFW31YEwpkMuc5THy2PSt5bDMsktWQcFF8syAmRUapSCGu8ED9W6oDMSgv6Zz8idoc4a6mr8BDzTJY47LJhkJ8UB7WEGuduB"
	xpub2 = "[bbbbbbbb/48h/0h/0h/2h]xpub69H7F5d8KSRgmmdJg2KhpAK8SR3DjMwAdkxj3ZuxV27CprR9LgpeyGmXUbC6wb7ERfvrnKZjXoUhmqJQR7p2fhdAS8FSsVCYzdhrA7gkbs9"
	xpub3 = "[cccccccc/48h/0h/0h/2h]xpub6A89ZzoGeJLNUVgXUHiLL8SDDpbvfFg44vufVSDeZz6KR76GakSmoSC8ecRyZii5hbfphs2DJGVy9GYTHgAB95FFBGCPZXawgskCHlVf2J9"
)

func TestSingle(t *testing.T) {
	recv, change := descriptor.Single(descriptor.P2WPKH, xpub1)

	require.True(t, strings.HasPrefix(recv, "wpkh("+xpub1+"/0/*)#"))
	require.True(t, strings.HasPrefix(change, "wpkh("+xpub1+"/1/*)#"))
	require.True(t, descriptor.Check(recv))
	require.True(t, descriptor.Check(change))
}

func TestSingleNested(t *testing.T) {
	recv, change := descriptor.Single(descriptor.NestedP2WPKH, xpub1)

	require.True(t, strings.HasPrefix(recv, "sh(wpkh("+xpub1+"/0/*))#"))
	require.True(t, strings.HasPrefix(change, "sh(wpkh("+xpub1+"/1/*))#"))
	require.True(t, descriptor.Check(recv))
	require.True(t, descriptor.Check(change))
}

func TestMulti(t *testing.T) {
	recv, change, err := descriptor.Multi(
		descriptor.P2WSH, 2, []string{xpub1, xpub2, xpub3},
	)
	require.NoError(t, err)

	expectedRecv := fmt.Sprintf(
		"wsh(sortedmulti(2,%s/0/*,%s/0/*,%s/0/*))", xpub1, xpub2, xpub3,
	)
	expectedChange := fmt.Sprintf(
		"wsh(sortedmulti(2,%s/1/*,%s/1/*,%s/1/*))", xpub1, xpub2, xpub3,
	)
	require.True(t, strings.HasPrefix(recv, expectedRecv+"#"))
	require.True(t, strings.HasPrefix(change, expectedChange+"#"))
	require.True(t, descriptor.Check(recv))
	require.True(t, descriptor.Check(change))
}

func TestMultiKeyOrderChangesDescriptorNotValidity(t *testing.T) {
	recv1, _, err := descriptor.Multi(
		descriptor.P2WSH, 2, []string{xpub1, xpub2, xpub3},
	)
	require.NoError(t, err)
	recv2, _, err := descriptor.Multi(
		descriptor.P2WSH, 2, []string{xpub3, xpub2, xpub1},
	)
	require.NoError(t, err)

	require.NotEqual(t, recv1, recv2)
	require.True(t, descriptor.Check(recv1))
	require.True(t, descriptor.Check(recv2))
}

func TestMultiInvalidThreshold(t *testing.T) {
	_, _, err := descriptor.Multi(descriptor.P2WSH, 4, []string{xpub1, xpub2})
	require.Error(t, err)
	_, _, err = descriptor.Multi(descriptor.P2WSH, 0, []string{xpub1, xpub2})
	require.Error(t, err)
}

func TestParseTemplate(t *testing.T) {
	require.Equal(t, descriptor.NestedP2WSH, descriptor.ParseTemplate("sh-wsh"))
	require.Equal(t, descriptor.P2WPKH, descriptor.ParseTemplate("wpkh"))
	require.Equal(t, "sh-wsh", descriptor.NestedP2WSH.String())
}

func TestChecksumVector(t *testing.T) {
	// Reference vector from the node's descriptor documentation.
	desc := "wpkh([d34db33f/84h/0h/0h]xpub6DJ2dNUysrn5Vt36jH2KLBT2i1auw1tTSSomg8PhqNiUtx8QX2SvC9nrHu81fT41fvDUnhMjEzQgXnQjKEu3oaqMSzhSrHMxyyoEAmUHQbY/0/*)"
	require.Equal(t, "cjjspncu", descriptor.Checksum(desc))
	require.Equal(t, desc+"#cjjspncu", descriptor.AddChecksum(desc))
	require.True(t, descriptor.Check(desc+"#cjjspncu"))
}

func TestChecksumProperties(t *testing.T) {
	desc := "wsh(sortedmulti(2," + xpub1 + "/0/*," + xpub2 + "/0/*))"

	sum := descriptor.Checksum(desc)
	require.Len(t, sum, 8)
	require.Equal(t, sum, descriptor.Checksum(desc))
	require.NotEqual(t, sum, descriptor.Checksum(desc+" "))

	require.False(t, descriptor.Check(desc))
	require.False(t, descriptor.Check(desc+"#qqqqqqqq"))
	require.True(t, descriptor.Check(descriptor.AddChecksum(desc)))

	// Re-adding a checksum replaces a stale one instead of stacking.
	stale := desc + "#qqqqqqqq"
	require.Equal(t, descriptor.AddChecksum(desc), descriptor.AddChecksum(stale))
}

func TestChecksumRejectsForeignCharacters(t *testing.T) {
	require.Empty(t, descriptor.Checksum("wpkh(Ω)"))
}
