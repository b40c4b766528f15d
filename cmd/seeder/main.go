// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command seeder loads flight records into a flightdesk database: the
// reference dataset by default, or records from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/flightdesk/core"
	"github.com/poiesic/flightdesk/storage"
	"github.com/poiesic/flightdesk/storage/badger"
)

func main() {
	dbPath := flag.String("db", "./flightdesk_db", "path to the flight database directory")
	filePath := flag.String("file", "", "JSON file with a flight record array (default: reference dataset)")
	flag.Parse()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	flights := storage.ReferenceFlights
	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			slog.Error("error reading flight file", "path", *filePath, "err", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &flights); err != nil {
			slog.Error("error parsing flight file", "path", *filePath, "err", err)
			os.Exit(1)
		}
	}

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		slog.Error("error opening backend", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	repo, err := badger.NewFlightRepository(backend)
	if err != nil {
		slog.Error("error opening flight repository", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := seed(context.Background(), repo, flights); err != nil {
		slog.Error("error seeding flights", "err", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, repo storage.FlightRepository, flights []core.FlightRecord) error {
	if err := repo.AddFlights(ctx, flights...); err != nil {
		return err
	}
	slog.Info("seeded flight records", "count", len(flights))
	return nil
}
