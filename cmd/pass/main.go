// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-pass-store/internal/client"
	"github.com/MKhiriev/go-pass-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(buildInfo)
	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
