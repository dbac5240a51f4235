package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/multiversx/mx-chain-abi-go/api/gin"
	"github.com/multiversx/mx-chain-abi-go/api/shared"
	"github.com/multiversx/mx-chain-abi-go/config"
	"github.com/multiversx/mx-chain-abi-go/facade"
	"github.com/multiversx/mx-chain-abi-go/factory"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

const (
	unVersionedAppString = "undefined"
	hexPrefix            = "0x"
)

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`
	log = logger.GetOrCreate("main")
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//            go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = unVersionedAppString

type abiComponentsHolder interface {
	Facade() shared.FacadeHandler
	MetricsGatherer() prometheus.Gatherer
	Close() error
}

func main() {
	_ = logger.SetDisplayByteSlice(logger.ToHexShort)

	app := createApp()
	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func createApp() *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "ABI codec CLI App"
	app.Version = appVersion
	app.Usage = "Encodes and decodes call arguments using the ABI head/tail layout and serves the same operations over a REST API"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "encode",
			Usage:  "encodes the call arguments as one tuple",
			Flags:  []cli.Flag{typesFlag, argsFlag},
			Action: encode,
		},
		{
			Name:   "encode-single",
			Usage:  "encodes one value, dynamic values are printed without a leading offset",
			Flags:  []cli.Flag{typeFlag, argFlag},
			Action: encodeSingle,
		},
		{
			Name:   "decode",
			Usage:  "decodes the call arguments from one tuple",
			Flags:  []cli.Flag{typesFlag, dataFlag, dumpFlag},
			Action: decode,
		},
		{
			Name:   "decode-single",
			Usage:  "decodes one value",
			Flags:  []cli.Flag{typeFlag, dataFlag, dumpFlag},
			Action: decodeSingle,
		},
		{
			Name:   "is-encodable",
			Usage:  "checks if a value can be encoded under a type",
			Flags:  []cli.Flag{typeFlag, argFlag},
			Action: isEncodable,
		},
		{
			Name:   "canonical",
			Usage:  "prints the canonical form of a type",
			Flags:  []cli.Flag{typeFlag},
			Action: canonical,
		},
		{
			Name:   "serve",
			Usage:  "starts the REST API and waits for an interrupt signal",
			Action: serve,
		},
	}

	return app
}

func encode(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		args, err := facade.UnmarshalArguments([]byte(ctx.String(argsFlag.Name)))
		if err != nil {
			return err
		}

		encoded, err := components.Facade().EncodeArguments(ctx.StringSlice(typesFlag.Name), args)
		if err != nil {
			return errors.Wrap(err, "cannot encode the arguments")
		}

		_, err = fmt.Fprintln(ctx.App.Writer, hexPrefix+hex.EncodeToString(encoded))
		return err
	})
}

func encodeSingle(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		arg, err := facade.UnmarshalArgument([]byte(ctx.String(argFlag.Name)))
		if err != nil {
			return err
		}

		encoded, err := components.Facade().EncodeSingle(ctx.String(typeFlag.Name), arg)
		if err != nil {
			return errors.Wrap(err, "cannot encode the argument")
		}

		_, err = fmt.Fprintln(ctx.App.Writer, hexPrefix+hex.EncodeToString(encoded))
		return err
	})
}

func decode(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		data, err := hex.DecodeString(strings.TrimPrefix(ctx.String(dataFlag.Name), hexPrefix))
		if err != nil {
			return errors.Wrap(err, "invalid hex data")
		}

		values, err := components.Facade().DecodeArguments(ctx.StringSlice(typesFlag.Name), data)
		if err != nil {
			return errors.Wrap(err, "cannot decode the data")
		}

		return printValue(ctx, values)
	})
}

func decodeSingle(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		value, err := components.Facade().DecodeSingle(ctx.String(typeFlag.Name), ctx.String(dataFlag.Name))
		if err != nil {
			return errors.Wrap(err, "cannot decode the data")
		}

		return printValue(ctx, value)
	})
}

func isEncodable(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		arg, err := facade.UnmarshalArgument([]byte(ctx.String(argFlag.Name)))
		if err != nil {
			return err
		}

		encodable, err := components.Facade().IsEncodable(ctx.String(typeFlag.Name), arg)
		if err != nil {
			return errors.Wrap(err, "cannot check the argument")
		}

		_, err = fmt.Fprintln(ctx.App.Writer, encodable)
		return err
	})
}

func canonical(ctx *cli.Context) error {
	return withComponents(ctx, func(components abiComponentsHolder) error {
		canonicalType, err := components.Facade().CanonicalType(ctx.String(typeFlag.Name))
		if err != nil {
			return errors.Wrap(err, "cannot parse the type")
		}

		_, err = fmt.Fprintln(ctx.App.Writer, canonicalType)
		return err
	})
}

func serve(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.GlobalIsSet(restApiInterface.Name) {
		cfg.WebServer.InterfaceAddress = ctx.GlobalString(restApiInterface.Name)
		cfg.WebServer.Enabled = true
	}
	if ctx.GlobalBool(restApiPprof.Name) {
		cfg.WebServer.EnablePprof = true
	}

	components, err := createComponents(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = components.Close()
	}()

	webServer, err := gin.NewGinWebServerHandler(gin.ArgsNewWebServer{
		Facade:          components.Facade(),
		Config:          cfg.WebServer,
		MetricsGatherer: components.MetricsGatherer(),
	})
	if err != nil {
		return errors.Wrap(err, "cannot create the web server")
	}

	err = webServer.StartHttpServer()
	if err != nil {
		return errors.Wrap(err, "cannot start the web server")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Info("terminating at user's signal...", "signal", sig.String())

	return webServer.Close()
}

func withComponents(ctx *cli.Context, handler func(components abiComponentsHolder) error) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	components, err := createComponents(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = components.Close()
	}()

	return handler(components)
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := ctx.GlobalString(configurationFile.Name)

	var cfg *config.Config
	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot load the configuration file %s", configPath)
		}
	case os.IsNotExist(err) && !ctx.GlobalIsSet(configurationFile.Name):
		defaultConfig := config.DefaultConfig()
		cfg = &defaultConfig
	default:
		return nil, errors.Wrapf(err, "cannot access the configuration file %s", configPath)
	}

	if ctx.GlobalIsSet(logLevel.Name) {
		cfg.Logs.LogLevel = ctx.GlobalString(logLevel.Name)
	}
	if ctx.GlobalBool(disableAnsiColor.Name) {
		cfg.Logs.DisableAnsiColor = true
	}

	err = applyLogsConfig(cfg.Logs)
	if err != nil {
		return nil, err
	}

	log.Debug("config loaded", "path", configPath, "log level", cfg.Logs.LogLevel)

	return cfg, nil
}

func applyLogsConfig(logsConfig config.LogsConfig) error {
	err := logger.SetLogLevel(logsConfig.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	return removeANSIColorsForLoggerIfNeeded(logsConfig.DisableAnsiColor)
}

func removeANSIColorsForLoggerIfNeeded(disableAnsi bool) error {
	if !disableAnsi {
		return nil
	}

	err := logger.RemoveLogObserver(os.Stdout)
	if err != nil {
		return err
	}

	return logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
}

func createComponents(cfg *config.Config) (abiComponentsHolder, error) {
	componentsFactory, err := factory.NewAbiComponentsFactory(factory.AbiComponentsFactoryArgs{
		Config:     cfg,
		AppVersion: appVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot create the components factory")
	}

	components, err := componentsFactory.Create()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create the components")
	}

	return components, nil
}

func printValue(ctx *cli.Context, value any) error {
	if ctx.Bool(dumpFlag.Name) {
		spew.Fdump(ctx.App.Writer, value)
		return nil
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, string(serialized))
	return err
}
