package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbook/internal/gst"
)

func TestExtractStateCode(t *testing.T) {
	tests := []struct {
		gstin string
		want  string
	}{
		{"27ABCDE1234F1Z5", "27"},
		{"29", "29"},
		{"1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.gstin, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.ExtractStateCode(tt.gstin))
		})
	}
}

func TestIsIntrastate(t *testing.T) {
	assert.True(t, gst.IsIntrastate("27", "27"))
	assert.False(t, gst.IsIntrastate("27", "29"))
	assert.True(t, gst.IsIntrastate("", "29"))
	assert.True(t, gst.IsIntrastate("27", ""))
	assert.True(t, gst.IsIntrastate("", ""))
}

func TestResolveState(t *testing.T) {
	assert.Equal(t, "07", gst.ResolveState("07", "27ABCDE1234F1Z5"))
	assert.Equal(t, "27", gst.ResolveState("", "27ABCDE1234F1Z5"))
	assert.Equal(t, "27", gst.ResolveState("  ", " 27ABCDE1234F1Z5"))
	assert.Equal(t, "", gst.ResolveState("", ""))
}

func TestValidGSTIN(t *testing.T) {
	assert.True(t, gst.ValidGSTIN("27ABCDE1234F1Z5"))
	assert.False(t, gst.ValidGSTIN("27abcde1234f1z5"))
	assert.False(t, gst.ValidGSTIN("27ABCDE1234F1Z"))
	assert.False(t, gst.ValidGSTIN(""))
}

func TestValidStateCode(t *testing.T) {
	for _, ok := range []string{"01", "27", "38"} {
		assert.True(t, gst.ValidStateCode(ok), ok)
	}
	for _, bad := range []string{"", "0", "00", "39", "7", "ab", "270"} {
		assert.False(t, gst.ValidStateCode(bad), bad)
	}
}
