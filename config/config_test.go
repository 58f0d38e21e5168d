package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt("markers"), 15)
	is.Equal(c.GetInt("spots"), 6)
	is.Equal(c.GetInt("progress-interval"), 500)
	is.Equal(c.GetBool("debug"), false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--markers", "6", "--spots", "3", "--debug"}))
	is.Equal(c.GetInt("markers"), 6)
	is.Equal(c.GetInt("spots"), 3)
	is.Equal(c.GetBool("debug"), true)
}

func TestStorePath(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--datapath", "/tmp/bgend"}))
	is.Equal(c.StorePath(6, 3), filepath.Join("/tmp/bgend", "bgend_store_6_3.db"))
}
