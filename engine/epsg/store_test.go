package epsg

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	for _, backend := range []string{StoreBadger, StoreLevelDB} {
		t.Run(backend, func(t *testing.T) {
			tmp, err := ioutil.TempDir("", "crscheck-store")
			if err != nil {
				t.Fatal(err)
			}
			defer os.RemoveAll(tmp)
			dir := filepath.Join(tmp, "db")

			s, err := openStore(backend, dir)
			if err != nil {
				t.Fatal(err)
			}
			for _, k := range []string{"crs/B", "crs/A", "other/C"} {
				if err := s.Put([]byte(k), []byte("v"+k)); err != nil {
					t.Fatal(err)
				}
			}
			if v, err := s.Get([]byte("crs/A")); err != nil || string(v) != "vcrs/A" {
				t.Errorf("unexpected value %q %v", v, err)
			}
			if _, err := s.Get([]byte("crs/X")); err != NotFound {
				t.Errorf("expected NotFound, got %v", err)
			}
			keys, err := s.Keys([]byte("crs/"))
			if err != nil {
				t.Fatal(err)
			}
			if len(keys) != 2 || string(keys[0]) != "crs/A" || string(keys[1]) != "crs/B" {
				t.Errorf("unexpected keys %q", keys)
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}

			s, err = openStore(backend, dir)
			if err != nil {
				t.Fatal(err)
			}
			defer s.Close()
			if v, err := s.Get([]byte("crs/B")); err != nil || string(v) != "vcrs/B" {
				t.Errorf("unexpected value after reopen %q %v", v, err)
			}
		})
	}
}

func TestOpenStoreUnknown(t *testing.T) {
	tmp, err := ioutil.TempDir("", "crscheck-store")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmp)
	if _, err := openStore("bolt", tmp); err == nil {
		t.Error("expected error")
	}
}
