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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// DataSourceConfig selects between the local SQLite backend and PostgreSQL.
// Type is either "postgres" or "sqlite"; Path is only read for SQLite.
type DataSourceConfig struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
}

// MatchingConfig overrides the default matching policy. Zero values fall
// back to the built-in defaults.
type MatchingConfig struct {
	HighConfidence      float64 `yaml:"high_confidence"`
	MediumConfidence    float64 `yaml:"medium_confidence"`
	LowConfidence       float64 `yaml:"low_confidence"`
	SpatialRadiusMeters float64 `yaml:"spatial_radius_meters"`
	CandidateLimit      int     `yaml:"candidate_limit"`
	DuplicateQueueLimit int     `yaml:"duplicate_queue_limit"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Matching   MatchingConfig   `yaml:"matching"`
}
