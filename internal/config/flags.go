package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-user journal owner identifier
//	-upload-url media upload endpoint URL
//	-create-url entry create endpoint URL
//	-get-url entry list endpoint URL
//	-update-url entry update endpoint URL
//	-delete-url entry delete endpoint URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reply-delay assistant reply delay (e.g., "400ms")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var userID string
	var uploadURL, createURL, getURL, updateURL, deleteURL string
	var requestTimeout time.Duration
	var replyDelay time.Duration
	var jsonConfigPath string

	flag.StringVar(&userID, "user", "", "Journal owner identifier")
	flag.StringVar(&uploadURL, "upload-url", "", "Media upload endpoint URL")
	flag.StringVar(&createURL, "create-url", "", "Entry create endpoint URL")
	flag.StringVar(&getURL, "get-url", "", "Entry list endpoint URL")
	flag.StringVar(&updateURL, "update-url", "", "Entry update endpoint URL")
	flag.StringVar(&deleteURL, "delete-url", "", "Entry delete endpoint URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&replyDelay, "reply-delay", 0, "Assistant reply delay (e.g., 400ms)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID: userID,
		},
		Endpoints: Endpoints{
			UploadURL: uploadURL,
			CreateURL: createURL,
			GetURL:    getURL,
			UpdateURL: updateURL,
			DeleteURL: deleteURL,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Assistant: Assistant{
			ReplyDelay: replyDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
