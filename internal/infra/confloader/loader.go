package confloader

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is stripped from environment variable names.
const DefaultEnvPrefix = "RANDAPI_"

// Loader merges a YAML file and the environment onto a koanf-tagged struct.
type Loader struct {
	mu       sync.Mutex
	prefix   string
	filePath string
	aliases  [][2]string // env name, config key
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix replaces DefaultEnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithConfigFile reads path before the environment. Empty means no file.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.filePath = path }
}

// WithEnvAlias maps an unprefixed variable such as PORT onto key. Aliases
// win over prefixed variables; empty values are ignored.
func WithEnvAlias(name, key string) Option {
	return func(l *Loader) { l.aliases = append(l.aliases, [2]string{name, key}) }
}

// NewLoader returns a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{prefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FilePath returns the configuration file, if any.
func (l *Loader) FilePath() string { return l.filePath }

// Load fills target. Fields keep their current values unless a source sets
// them, so target should arrive holding the defaults.
func (l *Loader) Load(target any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := koanf.New(".")
	envKeys := envKeyTable(reflect.TypeOf(target))

	if l.filePath != "" {
		if err := k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
	}

	toKey := func(name string) string {
		name = strings.ToLower(strings.TrimPrefix(name, l.prefix))
		if key, ok := envKeys[name]; ok {
			return key
		}
		return strings.ReplaceAll(name, "_", ".")
	}
	if err := k.Load(env.Provider(l.prefix, ".", toKey), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if set := l.aliasValues(); len(set) > 0 {
		if err := k.Load(flatMap(set), nil); err != nil {
			return fmt.Errorf("load env aliases: %w", err)
		}
	}

	if err := k.UnmarshalWithConf("", target, koanf.UnmarshalConf{DecoderConfig: decoderConfig()}); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// Reload is Load under another name; every call starts from a clean slate
// so keys removed from the file fall back to target's defaults.
func (l *Loader) Reload(target any) error { return l.Load(target) }

func (l *Loader) aliasValues() map[string]any {
	out := make(map[string]any)
	for _, a := range l.aliases {
		if v := os.Getenv(a[0]); v != "" {
			out[a[1]] = v
		}
	}
	return out
}

// envKeyTable maps the lower-case env form of every leaf koanf key
// (server_http_read_header_timeout) to its dotted key. It lets keys that
// contain underscores survive the env provider.
func envKeyTable(t reflect.Type) map[string]string {
	out := make(map[string]string)
	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return
		}
		for _, f := range reflect.VisibleFields(t) {
			name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
			if !f.IsExported() || name == "" || name == "-" {
				continue
			}
			key := name
			if prefix != "" {
				key = prefix + "." + name
			}
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft.PkgPath() != "time" {
				walk(ft, key)
				continue
			}
			out[strings.ReplaceAll(key, ".", "_")] = key
		}
	}
	walk(t, "")
	return out
}

// decoderConfig extends koanf's default decoding with comma-separated
// strings for slice fields, the only way to pass a list through the env.
func decoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		WeaklyTypedInput: true,
	}
}

// flatMap is a koanf.Provider over dotted keys.
type flatMap map[string]any

func (m flatMap) Read() (map[string]any, error) { return maps.Unflatten(m, "."), nil }

func (flatMap) ReadBytes() ([]byte, error) {
	return nil, errors.New("confloader: flatMap has no byte form")
}
