package tasksrepobridge

import (
	"net/http"

	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/core/scaffolding/fop"
	"github.com/taskward/taskward/sdk/validation"
)

// QueryParams are the raw listing query parameters.
type QueryParams struct {
	Status    string
	SortBy    string
	SortOrder string
	Page      string
	Limit     string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Status:    q.Get("status"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
	}
}

// parseFilter scopes the listing. Admins see every task; everyone else is
// restricted to their own. The status filter is exact and case sensitive.
func parseFilter(qp QueryParams, user usersrepo.User) tasksrepo.QueryFilter {
	filter := tasksrepo.QueryFilter{
		Status: validation.StringPtrIfNotEmpty(qp.Status),
	}

	if !user.IsAdmin {
		filter.UserID = validation.StringPtr(user.UserID)
	}

	return filter
}

// ORDER
var orderByFields = map[string]string{
	"title":       tasksrepo.OrderByTitle,
	"description": tasksrepo.OrderByDescription,
	"status":      tasksrepo.OrderByStatus,
	"created_at":  tasksrepo.OrderByCreatedAt,
	"updated_at":  tasksrepo.OrderByUpdatedAt,
}

// parseOrderBy resolves the sortBy/sortOrder parameters. An unknown sortBy
// is a validation error rather than a silent fallback.
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseOrder(orderByFields, qp.SortBy, qp.SortOrder, tasksrepo.DefaultOrderBy())
}

// parsePage resolves page/limit leniently. Garbage in, defaults out.
func parsePage(qp QueryParams) fop.Page {
	return fop.ParsePage(qp.Page, qp.Limit)
}
