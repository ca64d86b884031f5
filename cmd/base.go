// Package cmd holds the configuration plumbing shared by the xofhash commands.
package cmd

import (
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-xofhash/config"
	"github.com/spacemeshos/go-xofhash/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// ParseConfig layers the default config, the config file and the flags that
// were set on the command line, in that order.
func ParseConfig(flags *pflag.FlagSet) (*config.Config, error) {
	fileLocation, err := flags.GetString("config")
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	vip := viper.New()
	if err := config.LoadConfig(fileLocation, vip); err != nil {
		return nil, log.ErrMalformedConfig(err)
	}

	conf := config.DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	// load config if it was loaded to our viper
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return nil, log.ErrMalformedConfig(fmt.Errorf("unmarshal viper: %w", err))
	}
	if err := EnsureCLIFlags(flags, &conf); err != nil {
		return nil, log.ErrBadFlags(err)
	}
	conf.SetConfigFile(fileLocation)
	if err := conf.Validate(); err != nil {
		return nil, log.ErrBadFlags(err)
	}
	return &conf, nil
}

// EnsureCLIFlags copies every flag that was changed on the command line into
// the config field whose mapstructure tag matches the flag name.
func EnsureCLIFlags(flags *pflag.FlagSet, appCFG *config.Config) error {
	vip := viper.New()
	if err := vip.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	assignFields := func(p reflect.Type, elem reflect.Value, name string) {
		for i := 0; i < p.NumField(); i++ {
			if p.Field(i).Tag.Get("mapstructure") == name {
				var val any
				switch p.Field(i).Type.String() {
				case "bool":
					val = vip.GetBool(name)
				case "string":
					val = vip.GetString(name)
				case "int":
					val = vip.GetInt(name)
				case "uint64":
					val = vip.GetUint64(name)
				default:
					val = vip.Get(name)
				}

				elem.Field(i).Set(reflect.ValueOf(val))
				return
			}
		}
	}

	// viper can't handle nested structs when deserialize
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			name := f.Name

			ff := reflect.TypeOf(appCFG.BaseConfig)
			elem := reflect.ValueOf(&appCFG.BaseConfig).Elem()
			assignFields(ff, elem, name)

			ff = reflect.TypeOf(appCFG.HASH)
			elem = reflect.ValueOf(&appCFG.HASH).Elem()
			assignFields(ff, elem, name)

			ff = reflect.TypeOf(appCFG.LOGGING)
			elem = reflect.ValueOf(&appCFG.LOGGING).Elem()
			assignFields(ff, elem, name)
		}
	})
	return nil
}

// NewLogger builds the process logger from the logging section.
func NewLogger(conf *config.Config, w io.Writer) (*zap.Logger, error) {
	logger, err := log.New(conf.LOGGING.Level, conf.LOGGING.Encoder, w)
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	return logger, nil
}
