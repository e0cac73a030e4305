// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Codecarve Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/codecarve/carved/fault"
	"github.com/codecarve/carved/handle"
)

func TestScanFmt(t *testing.T) {

	stringHandle := "4f2d58e556a9f9a48cca129fa8bd1ca2f0fd5173"

	var h handle.Handle
	n, err := fmt.Sscan(stringHandle, &h)
	if nil != err {
		t.Fatalf("hex to handle error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	expected := handle.Handle{
		0x4f, 0x2d, 0x58, 0xe5, 0x56,
		0xa9, 0xf9, 0xa4, 0x8c, 0xca,
		0x12, 0x9f, 0xa8, 0xbd, 0x1c,
		0xa2, 0xf0, 0xfd, 0x51, 0x73,
	}

	if h != expected {
		t.Errorf("handle = %#v expected %#v", h, expected)
	}

	s := fmt.Sprintf("%s", h)
	if s != stringHandle {
		t.Errorf("string: handle = %s expected %s", s, stringHandle)
	}

	s = fmt.Sprintf("%#v", h)
	if s != "<handle:"+stringHandle+">" {
		t.Errorf("go string: handle = %s expected <handle:%s>", s, stringHandle)
	}
}

func TestInvalidLength(t *testing.T) {

	var h handle.Handle

	// too short
	_, err := fmt.Sscan("4f2d58e5", &h)
	if fault.ErrInvalidHandleLength != err {
		t.Errorf("unexpected error: %v", err)
	}

	err = h.UnmarshalText([]byte("4f2d58e5"))
	if fault.ErrInvalidHandleLength != err {
		t.Errorf("unexpected error: %v", err)
	}

	err = handle.FromBytes(&h, []byte{0x01, 0x02})
	if fault.ErrInvalidHandleLength != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {

	original := handle.Handle{
		0x00, 0x11, 0x22, 0x33, 0x44,
		0x55, 0x66, 0x77, 0x88, 0x99,
		0xaa, 0xbb, 0xcc, 0xdd, 0xee,
		0xff, 0x0f, 0x1e, 0x2d, 0x3c,
	}

	buffer, err := json.Marshal(original)
	if nil != err {
		t.Fatalf("marshal error: %v", err)
	}

	expected := `"00112233445566778899aabbccddeeff0f1e2d3c"`
	if expected != string(buffer) {
		t.Errorf("json = %s expected %s", buffer, expected)
	}

	var decoded handle.Handle
	err = json.Unmarshal(buffer, &decoded)
	if nil != err {
		t.Fatalf("unmarshal error: %v", err)
	}

	if decoded != original {
		t.Errorf("handle = %#v expected %#v", decoded, original)
	}
}

func TestIsZero(t *testing.T) {

	var h handle.Handle
	if !h.IsZero() {
		t.Errorf("zero handle not detected")
	}

	h[handle.Length-1] = 0x01
	if h.IsZero() {
		t.Errorf("non-zero handle detected as zero")
	}
}
