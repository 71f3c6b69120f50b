package keystore

import (
	"errors"
	"testing"

	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
)

// memHandle is an in-memory Handle for tests; it never touches the
// filesystem.
type memHandle struct {
	data    []byte
	present bool
}

func (h *memHandle) ReadAll() ([]byte, error) {
	if !h.present {
		return nil, errors.New("memHandle: not present")
	}
	return append([]byte(nil), h.data...), nil
}

func (h *memHandle) WriteAll(data []byte) error {
	h.data = append([]byte(nil), data...)
	h.present = true
	return nil
}

func (h *memHandle) Remove() error {
	h.data = nil
	h.present = false
	return nil
}

func (h *memHandle) Exists() bool {
	return h.present
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kp, err := credential.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer kp.Destroy()

	h := &memHandle{}
	if err := Save(kp, "correct horse battery", h); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(h.data) != RecordSize {
		t.Fatalf("persisted blob size = %d, want %d", len(h.data), RecordSize)
	}

	loaded, err := Load("correct horse battery", h)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer loaded.Destroy()

	if loaded.PublicText() != kp.PublicText() {
		t.Errorf("public address mismatch: got %s, want %s", loaded.PublicText(), kp.PublicText())
	}
}

func TestLoadWrongPasswordRejected(t *testing.T) {
	kp, err := credential.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer kp.Destroy()

	h := &memHandle{}
	if err := Save(kp, "correct horse battery", h); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err = Load("wrong password here", h)
	if !errors.Is(err, walleterr.ErrWrongPassword) {
		t.Errorf("Load with wrong password: got %v, want ErrWrongPassword", err)
	}
}

func TestSavePasswordLengthValidation(t *testing.T) {
	kp, err := credential.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer kp.Destroy()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "short1"},
		{"too long", string(make([]byte, maxPasswordLen+1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := &memHandle{}
			if err := Save(kp, c.password, h); err == nil {
				t.Error("expected error, got nil")
			}
			if h.Exists() {
				t.Error("Save should not have persisted anything on a rejected password")
			}
		})
	}
}

func TestLoadCorruptRecordRejected(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(buf []byte)
	}{
		{"bad magic", func(buf []byte) { buf[0] ^= 0xFF }},
		{"bad version", func(buf []byte) { buf[offVersion] = 0xFF }},
		{"bad checksum", func(buf []byte) { buf[offChecksum] ^= 0xFF }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kp, err := credential.Generate()
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			defer kp.Destroy()

			h := &memHandle{}
			if err := Save(kp, "correct horse battery", h); err != nil {
				t.Fatalf("Save: %v", err)
			}
			c.corrupt(h.data)

			_, err = Load("correct horse battery", h)
			if !errors.Is(err, walleterr.ErrCorruptRecord) {
				t.Errorf("got %v, want ErrCorruptRecord", err)
			}
		})
	}
}

func TestLoadWrongSizeRejected(t *testing.T) {
	h := &memHandle{data: []byte{1, 2, 3}, present: true}
	if _, err := Load("whatever password", h); !errors.Is(err, walleterr.ErrCorruptRecord) {
		t.Errorf("got %v, want ErrCorruptRecord", err)
	}
}

func TestDeleteIgnoreNotPresent(t *testing.T) {
	h := &memHandle{}
	if err := Delete(h, true); err != nil {
		t.Errorf("Delete with ignoreNotPresent on an absent handle: %v", err)
	}
	if err := Delete(h, false); err == nil {
		t.Error("Delete without ignoreNotPresent on an absent handle should fail")
	}
}

func TestDeleteRemovesPresentRecord(t *testing.T) {
	kp, err := credential.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer kp.Destroy()

	h := &memHandle{}
	if err := Save(kp, "correct horse battery", h); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Delete(h, false); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if h.Exists() {
		t.Error("handle still exists after Delete")
	}
}
