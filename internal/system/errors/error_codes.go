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

package errors

const errorPrefix = "PRS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while initializing the database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while executing a database query.",
	}

	EXECUTE_UPDATE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while executing a database update.",
	}

	PERSON_MATCH = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while matching person records.",
	}

	PROPERTY_MATCH = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while matching property records.",
	}

	ADD_DUPLICATE_ENTRY = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while adding an entry to the duplicate queue.",
	}

	GET_DUPLICATE_QUEUE = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching the duplicate queue.",
	}

	RESOLVE_DUPLICATE = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while resolving a duplicate queue entry.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Invalid request format.",
	}

	DUPLICATE_ENTRY_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Duplicate queue entry not found.",
	}

	INVALID_RESOLUTION = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Invalid duplicate resolution value.",
	}

	INVALID_QUEUE_STATUS = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Invalid duplicate queue status value.",
	}
)
