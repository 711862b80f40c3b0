package application

import (
	"time"

	monitoringdomain "checkhub/internal/monitoring/domain"
	"checkhub/internal/shared/validation"
)

var createCheckParamsSchema = validation.Schema{
	Path: "params",
	Fields: []validation.Field{
		validation.Required("monitorId", validation.NonEmpty()),
	},
	AllowUnknown: true,
}

var createCheckBodySchema = validation.Schema{
	Path: "body",
	Fields: []validation.Field{
		validation.Required("monitorId", validation.NonEmpty()),
		validation.Required("status", validation.Boolean()),
		validation.Required("responseTime", validation.Number(), validation.Min(0)),
		validation.Required("statusCode", validation.Integer()),
		validation.Optional("message", validation.String()),
	},
}

var getChecksParamsSchema = validation.Schema{
	Path: "params",
	Fields: []validation.Field{
		validation.Required("monitorId", validation.NonEmpty()),
	},
	AllowUnknown: true,
}

var getTeamChecksParamsSchema = validation.Schema{
	Path: "params",
	Fields: []validation.Field{
		validation.Required("teamId", validation.NonEmpty()),
	},
	AllowUnknown: true,
}

// checksQuerySchema is shared by the monitor and team history queries
var checksQuerySchema = validation.Schema{
	Path: "query",
	Fields: []validation.Field{
		validation.Optional("sortOrder", validation.OneOf(
			string(monitoringdomain.SortAsc), string(monitoringdomain.SortDesc))),
		validation.Optional("dateRange", validation.OneOf(
			string(monitoringdomain.DateRangeDay), string(monitoringdomain.DateRangeWeek),
			string(monitoringdomain.DateRangeMonth), string(monitoringdomain.DateRangeAll))),
		validation.Optional("filter", validation.OneOf(
			string(monitoringdomain.StatusAll), string(monitoringdomain.StatusUp),
			string(monitoringdomain.StatusDown), string(monitoringdomain.StatusResolve))),
		validation.Optional("page", validation.Integer(), validation.Min(0)),
		validation.Optional("rowsPerPage", validation.Integer(),
			validation.Min(1), validation.Max(monitoringdomain.MaxRowsPerPage)),
		validation.Optional("limit", validation.Integer(),
			validation.Min(1), validation.Max(monitoringdomain.MaxLimit)),
	},
	AllowUnknown: true,
}

// bodyObject asserts the decoded body is a JSON object
func bodyObject(body any) (map[string]any, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, validation.NewValidationError(map[string]string{"": "must be a JSON object"}, "body")
	}
	return obj, nil
}

// checkResult builds the domain payload from a validated body
func checkResult(body map[string]any) monitoringdomain.CheckResult {
	result := monitoringdomain.CheckResult{
		Status:       body["status"].(bool),
		ResponseTime: body["responseTime"].(float64),
		StatusCode:   body["statusCode"].(int),
	}
	if msg, ok := body["message"].(string); ok {
		result.Message = msg
	}
	return result
}

// checkFilters builds repository filters from a validated query
func checkFilters(query map[string]any, now time.Time) monitoringdomain.CheckFilters {
	filters := monitoringdomain.CheckFilters{
		Status: monitoringdomain.StatusAll,
		Order:  monitoringdomain.SortDesc,
	}

	if v, ok := query["sortOrder"].(string); ok {
		filters.Order = monitoringdomain.SortOrder(v)
	}
	if v, ok := query["filter"].(string); ok {
		filters.Status = monitoringdomain.StatusFilter(v)
	}
	if v, ok := query["dateRange"].(string); ok {
		filters.Since = monitoringdomain.DateRange(v).Since(now)
	}

	page, hasPage := query["page"].(int)
	rows, hasRows := query["rowsPerPage"].(int)
	switch {
	case hasPage || hasRows:
		if !hasRows {
			rows = monitoringdomain.DefaultRowsPerPage
		}
		filters.Limit = rows
		filters.Offset = page * rows
	default:
		filters.Limit = monitoringdomain.DefaultLimit
		if limit, ok := query["limit"].(int); ok {
			filters.Limit = limit
		}
	}

	return filters
}
