package main

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `[path]` for the main configuration file. This TOML file contains the parsing and decoding " +
			"limits, the REST API settings and the log level. The defaults are used if the file is missing.",
		Value: "./config/config.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,abi:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the abi package which will receive a DEBUG" +
			" log level. Overrides the value from the configuration file.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"Overrides the value from the configuration file.",
	}
	// restApiPprof enables the profiling routes of the REST API
	restApiPprof = cli.BoolFlag{
		Name:  "rest-api-pprof",
		Usage: "Boolean option for mounting the pprof profiling routes under /debug/pprof on the REST API.",
	}

	// typesFlag holds the types of the encoded or decoded call arguments, in order
	typesFlag = cli.StringSliceFlag{
		Name:  "type",
		Usage: "An ABI `type` string, such as uint256 or (address,bytes)[]. Repeat the flag for each argument.",
	}
	// typeFlag holds the type of a single value
	typeFlag = cli.StringFlag{
		Name:  "type",
		Usage: "An ABI `type` string, such as uint256 or (address,bytes)[]",
	}
	// argsFlag holds the call arguments as a JSON array
	argsFlag = cli.StringFlag{
		Name: "args",
		Usage: "The arguments as a `JSON array`. Integers can be JSON numbers, decimal strings or 0x hex strings, " +
			"byte values are hex strings.",
		Value: "[]",
	}
	// argFlag holds one argument as a JSON value
	argFlag = cli.StringFlag{
		Name:  "arg",
		Usage: "The argument as a `JSON value`",
	}
	// dataFlag holds the encoded data
	dataFlag = cli.StringFlag{
		Name:  "data",
		Usage: "The encoded `data` as a hex string, the 0x prefix is optional",
	}
	// dumpFlag prints the decoded values with their Go types
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "Boolean option for dumping the decoded values with their Go types instead of printing them as JSON.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		logLevel,
		disableAnsiColor,
		restApiInterface,
		restApiPprof,
	}
}
