package configutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gb2gh/internal/pkg/fs"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "GB2GH"
	DefaultConfigDir  = "~/.config/gb2gh"
	DefaultSourceMain = "master"
	DefaultTargetMain = "main"
)

type configMerger interface {
	MergeConfig(io.Reader) error
}

var (
	ErrHomeDirNotFound = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir = errors.New("configuration file is a directory")
)

var filetypes = []string{"yaml", "json", "toml"}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	err := cm.MergeConfig(in)
	if err != nil {
		return err
	}

	return nil
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, v *viper.Viper) error {
	f, err := loadFile(filename, fs.OS{})
	if err != nil {
		return err
	}
	if c, ok := f.(io.Closer); ok {
		defer c.Close()
	}

	return mergeConfig(f, v)
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand(DefaultConfigDir)
}

// loadDotEnv exports the variables of ./.env without overriding the
// environment. A missing file is not an error.
var loadDotEnv = func() error {
	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// configure sets the defaults and environment bindings, e.g. source.token is
// read from GB2GH_SOURCE_TOKEN.
func configure(v *viper.Viper) *viper.Viper {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("source.master", DefaultSourceMain)
	v.SetDefault("target.master", DefaultTargetMain)

	return v
}

func New() *viper.Viper {
	return configure(viper.New())
}

func configType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, ft := range filetypes {
		if ext == ft {
			return ft
		}
	}
	if ext == "yml" {
		return "yaml"
	}

	return "toml"
}

// Load merges the configuration at path into v. With an empty path the
// first global config file that exists is used, and having none is fine.
func Load(v *viper.Viper, path string) error {
	err := loadDotEnv()
	if err != nil {
		return errors.Wrap(err, "could not load .env")
	}

	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return ErrHomeDirNotFound
		}
		v.SetConfigType(configType(p))
		err = loadConfig(p, v)
		if err != nil {
			return errors.Wrapf(err, "could not load config %s", p)
		}

		return nil
	}

	cfgDir, err := getGlobalConfigDir()
	if err != nil {
		return ErrHomeDirNotFound
	}

	for _, ft := range filetypes {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		v.SetConfigType(ft)
		err = loadConfig(f, v)
		if err == nil {
			log.Debug().Str("path", f).Msg("config loaded")
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "could not load config %s", f)
		}
		log.Debug().
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return nil
}

// LoadGlobal loads the configuration into the global viper instance.
func LoadGlobal(path string) error {
	return Load(configure(viper.GetViper()), path)
}
