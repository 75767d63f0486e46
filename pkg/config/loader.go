package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/logging"
	"github.com/arthur-debert/stau/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "STAU_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions tunes which layers Load reads
type LoadOptions struct {
	// DotfilesDir locates the root config file; when empty the dir resolved
	// from the earlier layers is used
	DotfilesDir string

	// UserConfigPath overrides the XDG user config location
	UserConfigPath string

	// Overrides are applied last, keyed by koanf path (e.g. "uninstall.copy_back")
	Overrides map[string]interface{}

	SkipUser bool
	SkipEnv  bool
	SkipRoot bool
}

// Load reads and decodes the layered configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config
	if !opts.SkipUser {
		userPath := opts.UserConfigPath
		if userPath == "" {
			userPath = paths.UserConfigPath()
		}
		if err := loadFileIfExists(k, userPath); err != nil {
			return nil, err
		}
	}

	// The env layer is read before the root config so that STAU_DIR can
	// locate it, but merged after it so that the environment wins.
	envK := koanf.New(".")
	if !opts.SkipEnv {
		if err := envK.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 3. Root config
	if !opts.SkipRoot {
		dir := opts.DotfilesDir
		if dir == "" {
			dir = envK.String("dir")
		}
		if dir == "" {
			dir = k.String("dir")
		}
		if dir == "" {
			dir = filepath.Join("~", paths.DefaultDotfilesDir)
		}
		rootPath := filepath.Join(paths.ExpandHome(dir), paths.RootConfigFile)
		if err := loadFileIfExists(k, rootPath); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	if err := k.Load(confmap.Provider(envK.All(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge environment variables")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if cfg.Permissions.Directory == 0 {
		cfg.Permissions.Directory = 0755
	}

	logger.Debug().
		Str("dir", cfg.Dir).
		Str("target", cfg.Target).
		Bool("copyBack", cfg.Uninstall.CopyBack).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps STAU_UNINSTALL__COPY_BACK to uninstall.copy_back
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// stringToFileModeHookFunc accepts octal strings such as "0755" for
// os.FileMode fields
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(os.FileMode(0)) {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimPrefix(data.(string), "0o"), "0")
		if s == "" {
			return os.FileMode(0), nil
		}
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, err
		}
		return os.FileMode(mode), nil
	}
}
