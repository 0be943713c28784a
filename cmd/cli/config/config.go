package config

import "os"

const defaultAPIURL = "http://localhost:8080"

// Settings are filled from the root command's persistent flags.
type Settings struct {
	APIURL string
	Actor  string
	Token  string
	JSON   bool
}

// Current holds the settings for the running command.
var Current = Settings{}

// APIURL returns the base URL for the inventory API.
// It can be overridden with the HCI_INVENTORY_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("HCI_INVENTORY_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// Actor returns the default acting user id from HCI_INVENTORY_ACTOR.
func Actor() string {
	return os.Getenv("HCI_INVENTORY_ACTOR")
}

// Token returns a bearer token from HCI_INVENTORY_TOKEN. When set it takes
// precedence over the actor header.
func Token() string {
	return os.Getenv("HCI_INVENTORY_TOKEN")
}
