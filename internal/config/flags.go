package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-script-url remote script /exec endpoint
//	-upload-url remote upload endpoint (defaults to -script-url)
//	-no-remote disable the remote entirely (cache-only mode)
//	-request-timeout outbound request timeout (e.g., "15s")
//	-retry-max maximum read retries
//	-cache local cache file path
//	-watch-interval sheet watcher poll interval (e.g., "1h")
//	-a stub server address in format [host]:[port]
//	-d stub server sqlite database path
//	-log dashboard log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var scriptURL, uploadURL string
	var noRemote bool
	var requestTimeout time.Duration
	var retryMax int
	var cachePath string
	var watchInterval time.Duration
	var stubAddress string
	var stubDBPath string
	var logPath string
	var jsonConfigPath string

	flag.StringVar(&scriptURL, "script-url", "", "Remote script /exec endpoint")
	flag.StringVar(&uploadURL, "upload-url", "", "Remote upload endpoint")
	flag.BoolVar(&noRemote, "no-remote", false, "Disable the remote (cache-only mode)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.IntVar(&retryMax, "retry-max", 0, "Maximum read retries")
	flag.StringVar(&cachePath, "cache", "", "Local cache file path")
	flag.DurationVar(&watchInterval, "watch-interval", 0, "Sheet watcher poll interval (e.g., 1h)")
	flag.StringVar(&stubAddress, "a", "", "Stub server address host:port")
	flag.StringVar(&stubDBPath, "d", "", "Stub server sqlite database path")
	flag.StringVar(&logPath, "log", "", "Dashboard log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Remote: Remote{
			ScriptURL:      scriptURL,
			UploadURL:      uploadURL,
			Disabled:       noRemote,
			RequestTimeout: requestTimeout,
			RetryMax:       retryMax,
		},
		Cache: Cache{
			Path: cachePath,
		},
		Watch: Watch{
			Interval: watchInterval,
		},
		Stub: Stub{
			HTTPAddress: stubAddress,
			DBPath:      stubDBPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
