// Package config loads voicerouter configuration.
//
// LoadConfig reads a YAML file, then a .env file, then the process
// environment, and unmarshals the merged result with Viper. Environment
// variables use the VOICEROUTER_ prefix with underscores for nesting:
//
//	VOICEROUTER_SERVER_PORT=9090
//	VOICEROUTER_NORMALIZER_DEFAULT_STATUS=processing
//
// Config is the binary's configuration; call ApplyDefaults and Validate
// after loading.
package config
