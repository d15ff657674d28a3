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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowString_DriverScanTypes(t *testing.T) {
	row := map[string]interface{}{
		"text":    "value",
		"bytes":   []byte("bytes-value"),
		"integer": int64(42),
		"float":   float64(3.5),
		"missing": nil,
	}

	assert.Equal(t, "value", RowString(row, "text"))
	assert.Equal(t, "bytes-value", RowString(row, "bytes"))
	assert.Equal(t, "42", RowString(row, "integer"))
	assert.Equal(t, "3.5", RowString(row, "float"))
	assert.Equal(t, "", RowString(row, "missing"))
	assert.Equal(t, "", RowString(row, "absent"))
}

func TestRowFloat_DriverScanTypes(t *testing.T) {
	row := map[string]interface{}{
		"float":   float64(33.5),
		"integer": int64(36),
		"bytes":   []byte(" 12.25 "),
		"text":    "7.5",
		"junk":    "not-a-number",
	}

	v, ok := RowFloat(row, "float")
	assert.True(t, ok)
	assert.Equal(t, 33.5, v)

	v, ok = RowFloat(row, "integer")
	assert.True(t, ok)
	assert.Equal(t, 36.0, v)

	v, ok = RowFloat(row, "bytes")
	assert.True(t, ok)
	assert.Equal(t, 12.25, v)

	v, ok = RowFloat(row, "text")
	assert.True(t, ok)
	assert.Equal(t, 7.5, v)

	_, ok = RowFloat(row, "junk")
	assert.False(t, ok)

	_, ok = RowFloat(row, "absent")
	assert.False(t, ok)
}

func TestRowInt_DriverScanTypes(t *testing.T) {
	row := map[string]interface{}{
		"integer": int64(1980),
		"float":   float64(1975),
		"text":    "1990",
		"junk":    "unknown",
	}

	v, ok := RowInt(row, "integer")
	assert.True(t, ok)
	assert.Equal(t, 1980, v)

	v, ok = RowInt(row, "float")
	assert.True(t, ok)
	assert.Equal(t, 1975, v)

	v, ok = RowInt(row, "text")
	assert.True(t, ok)
	assert.Equal(t, 1990, v)

	_, ok = RowInt(row, "junk")
	assert.False(t, ok)
}
