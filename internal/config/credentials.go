// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"

	"github.com/joho/godotenv"

	"datacleanse/internal/postal"
)

// LoadCredentials reads postal provider credentials from the environment,
// loading a .env file first when one exists. Missing credentials are not
// an error; the client simply reports itself unconfigured.
func LoadCredentials() postal.Credentials {
	// Ignore the error: a missing .env file means plain env vars are used.
	_ = godotenv.Load()

	return postal.Credentials{
		ClientID:     os.Getenv("USPS_CLIENT_ID"),
		ClientSecret: os.Getenv("USPS_CLIENT_SECRET"),
	}
}
