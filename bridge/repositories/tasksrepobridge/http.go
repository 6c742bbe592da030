package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskward/taskward/bridge/scaffolding/errs"
	"github.com/taskward/taskward/bridge/scaffolding/fopbridge"
	"github.com/taskward/taskward/bridge/scaffolding/mid"
	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/infrastructure/web"
)

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	var req CreateTaskRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	record, err := b.taskRepository.Create(ctx, MarshalCreateToRepository(req, user.UserID))
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return MarshalToBridge(record)
}

// httpList is the composed task listing: ownership scope, then status
// filter, then allow-listed ordering, then offset pagination.
func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	qp := parseQueryParams(r)

	orderBy, err := parseOrderBy(qp)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	filter := parseFilter(qp, user)
	page := parsePage(qp)

	records, err := b.taskRepository.List(ctx, filter, orderBy, page)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return fopbridge.NewRecordsResponse(MarshalListToBridge(records))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	record, err := b.taskRepository.Get(ctx, web.Param(r, "task_id"), user.UserID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task not found")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return MarshalToBridge(record)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	var req UpdateTaskRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	record, err := b.taskRepository.Update(ctx, web.Param(r, "task_id"), user.UserID, MarshalUpdateToRepository(req))
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task not found")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return MarshalToBridge(record)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	user, err := mid.GetUser(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	record, err := b.taskRepository.Delete(ctx, web.Param(r, "task_id"), user.UserID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task not found")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return MarshalToBridge(record)
}
