// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Auth struct {
	// EmailDomain is appended to usernames without a domain to form the login email.
	EmailDomain string `koanf:"emaildomain"`
}

type Images struct {
	// MaxWidth is the maximum width in pixels of stored recipe images.
	MaxWidth int `koanf:"maxwidth"`

	// MaxEmbeddedBytes is the largest image stored inside a recipe document.
	// Larger images are written to the public bucket.
	MaxEmbeddedBytes int `koanf:"maxembeddedbytes"`
}

type Nutrition struct {
	// Workers is the number of concurrent background writes of logged meals.
	Workers int `koanf:"workers"`

	// MaxRetries is the number of attempts for each background write.
	MaxRetries uint `koanf:"maxretries"`
}

type LLM struct {
	// Model is the name of the Gemini model used for estimating macros.
	Model string `koanf:"model"`
}

type Logging struct {
	// Color enables colored human-readable logs for local development.
	Color bool `koanf:"color"`
}

type Config struct {
	config.Common

	Auth Auth `koanf:"auth"`

	Images Images `koanf:"images"`

	Nutrition Nutrition `koanf:"nutrition"`

	LLM LLM `koanf:"llm"`

	Logging Logging `koanf:"logging"`
}
