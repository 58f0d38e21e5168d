package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries process-wide settings for the bgend tools. Flags win over
// BGEND_-prefixed environment variables, which win over defaults.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("bgend", pflag.ContinueOnError)
	fs.Int("markers", 15, "number of markers (playing pieces)")
	fs.Int("spots", 6, "number of spots, not counting the off-the-board spot")
	fs.String("datapath", "./data", "directory for computed database files")
	fs.Int("progress-interval", 500, "log progress every this many boards; 0 disables")
	fs.Int("limit", 0, "if > 0, stop the sweep after this many boards (diagnostic only)")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.v.SetEnvPrefix("bgend")
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

func (c *Config) AllSettings() map[string]any { return c.v.AllSettings() }

// StorePath is the conventional location of a computed database for the
// given game parameters.
func (c *Config) StorePath(numMarkers, numSpots int) string {
	return filepath.Join(c.GetString("datapath"),
		fmt.Sprintf("bgend_store_%d_%d.db", numMarkers, numSpots))
}
