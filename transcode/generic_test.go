package transcode_test

import (
	"testing"

	"github.com/lestrrat-go/unibom/transcode"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	require.Equal(t, 8, transcode.Width[transcode.UTF8](), "UTF8 width")
	require.Equal(t, 16, transcode.Width[transcode.UTF16](), "UTF16 width")
	require.Equal(t, 16, transcode.Width[transcode.UCS2](), "UCS2 width")
	require.Equal(t, 32, transcode.Width[transcode.UTF32](), "UTF32 width")
	require.Contains(t, []int{16, 32}, transcode.Width[transcode.Wide](), "Wide width")
}

func TestToUTF8(t *testing.T) {
	const expected = "Aé中\U0001F600"

	require.Equal(t, expected, transcode.ToUTF8(transcode.UTF8(expected)).String(), "from UTF8")
	require.Equal(t, expected, transcode.ToUTF8(mixed.UTF16()).String(), "from UTF16")
	require.Equal(t, expected, transcode.ToUTF8(mixed.Wide()).String(), "from Wide")
	require.Equal(t, expected, transcode.ToUTF8(mixed).String(), "from UTF32")
	require.Equal(t, "Aé", transcode.ToUTF8(transcode.UCS2{0x41, 0xE9}).String(), "from UCS2")

	src := transcode.UTF8("abc")
	dst := transcode.ToUTF8(src)
	dst[0] = 'x'
	require.Equal(t, "abc", src.String(), "ToUTF8 returns a copy")
}

func TestFromUTF8(t *testing.T) {
	src := transcode.UTF8("Aé中\U0001F600")

	u16, err := transcode.FromUTF8[transcode.UTF16](src)
	require.NoError(t, err, "FromUTF8[UTF16] should succeed")
	require.Equal(t, mixed.UTF16(), u16, "FromUTF8[UTF16]")

	w, err := transcode.FromUTF8[transcode.Wide](src)
	require.NoError(t, err, "FromUTF8[Wide] should succeed")
	require.Equal(t, mixed.Wide(), w, "FromUTF8[Wide]")

	u32, err := transcode.FromUTF8[transcode.UTF32](src)
	require.NoError(t, err, "FromUTF8[UTF32] should succeed")
	require.Equal(t, mixed, u32, "FromUTF8[UTF32]")

	u8, err := transcode.FromUTF8[transcode.UTF8](src)
	require.NoError(t, err, "FromUTF8[UTF8] should succeed")
	require.Equal(t, src, u8, "FromUTF8[UTF8]")

	_, err = transcode.FromUTF8[transcode.UCS2](src)
	require.Error(t, err, "FromUTF8[UCS2] should fail for U+1F600")
}

func TestUTF32Dispatch(t *testing.T) {
	require.Equal(t, mixed, transcode.ToUTF32(mixed.UTF8()), "ToUTF32 from UTF8")
	require.Equal(t, mixed, transcode.ToUTF32(mixed.UTF16()), "ToUTF32 from UTF16")
	require.Equal(t, mixed, transcode.ToUTF32(mixed.Wide()), "ToUTF32 from Wide")
	require.Equal(t, mixed, transcode.ToUTF32(mixed), "ToUTF32 from UTF32")

	u8, err := transcode.FromUTF32[transcode.UTF8](mixed)
	require.NoError(t, err, "FromUTF32[UTF8] should succeed")
	require.Equal(t, mixed.UTF8(), u8, "FromUTF32[UTF8]")

	ucs, err := transcode.FromUTF32[transcode.UCS2](mixed[:3])
	require.NoError(t, err, "FromUTF32[UCS2] should succeed for BMP text")
	require.Equal(t, transcode.UCS2{0x41, 0xE9, 0x4E2D}, ucs, "FromUTF32[UCS2]")

	_, err = transcode.FromUTF32[transcode.UCS2](mixed)
	require.Error(t, err, "FromUTF32[UCS2] should fail for U+1F600")
}
