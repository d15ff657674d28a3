/*
 * Copyright (c) 2026, HLP Registry Project.
 *
 * HLP Registry Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	pkgerrors "github.com/pkg/errors"

	"github.com/hlp-registry/property-records-service/internal/system/config"
	"github.com/hlp-registry/property-records-service/internal/system/constants"
	"github.com/hlp-registry/property-records-service/internal/system/database/client"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
	dbType     string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	GetDBType() string
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

var testDB *sql.DB

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// SetTestDB injects an already-open connection. Test hook.
func SetTestDB(db *sql.DB) {
	testDB = db
}

// GetDBClient returns a database client for the configured datasource.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	if testDB != nil {
		return client.NewDBClient(testDB, d.GetDBType()), nil
	}

	runtimeConfig := config.GetPRSRuntime().Config
	dbConfig := getDBConfig(runtimeConfig)

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to connect to database")
	}

	// Test the database connection.
	if err := db.Ping(); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to ping database")
	}

	return client.NewDBClient(db, dbConfig.dbType), nil
}

// GetDBType returns the configured datasource type, defaulting to postgres.
func (d *DBProvider) GetDBType() string {

	dsType := config.GetPRSRuntime().Config.DataSource.Type
	if dsType == "" {
		return constants.DBTypePostgres
	}
	return dsType
}

// getDBConfig returns the database configuration based on the configured datasource.
func getDBConfig(dataSource config.Config) DBConfig {

	var dbConfig DBConfig

	if dataSource.DataSource.Type == constants.DBTypeSQLite {
		dbConfig.driverName = "sqlite3"
		dbConfig.dbType = constants.DBTypeSQLite
		dbConfig.dsn = dataSource.DataSource.Path + "?_journal_mode=WAL&_foreign_keys=on"
		return dbConfig
	}

	dbConfig.driverName = "postgres"
	dbConfig.dbType = constants.DBTypePostgres
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dataSource.DataSource.Hostname, dataSource.DataSource.Port, dataSource.DataSource.Username,
		dataSource.DataSource.Password, dataSource.DataSource.Name, dataSource.DataSource.SSLMode)

	return dbConfig
}
