// Package config provides centralized configuration management for the
// auction-listing analyzer. Configuration is loaded from multiple sources in
// order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Default values (lowest priority)
//
// All environment variables follow the pattern AFCLI_* for namespacing:
//
//	AFCLI_INPUT_PATH=afternic_auctions.csv
//	AFCLI_THRESHOLDS_PRICE=500
//	AFCLI_THRESHOLDS_RATING=20
//	AFCLI_LOGGING_LEVEL=debug
//
// A .env file in the working directory is honored for local runs. The loaded
// struct is validated with go-playground/validator before use; an invalid
// configuration fails the run at startup rather than mid-pipeline.
package config
