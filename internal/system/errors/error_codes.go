/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

const errorPrefix = "WMS-"

var (
	// Server error codes

	MATCH_WELFARE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while matching welfare services.",
	}

	COUNT_WELFARE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while counting welfare services.",
	}

	GET_WELFARE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching welfare service.",
	}

	LIST_WELFARE_IDS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while listing welfare service ids.",
	}

	GET_USER_DATA = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while fetching requester profile.",
	}

	UPSERT_USER_DATA = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while saving requester profile.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Unable to initialize database client.",
	}

	DOC_STORE_INIT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Unable to initialize document store client.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Parsing token failed.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization information was invalid or missing from your request.",
	}

	ORDER_COLUMN_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Order column name was not found.",
		Description: "The order_by parameter does not name a known catalog column.",
	}

	INVALID_PAGINATION = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Invalid pagination parameters.",
	}

	USER_DATA_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Requester profile validation failed.",
	}

	WELFARE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Welfare service not found.",
		Description: "No welfare service record found for the given service_id.",
	}

	USER_DATA_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Requester profile not found.",
		Description: "The requester has not saved a profile yet.",
	}
)
