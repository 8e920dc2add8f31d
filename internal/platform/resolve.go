package platform

import (
	"context"
	"errors"
	"fmt"
)

// TaskGroupChooser picks one task group out of several when a work
// requirement reference is ambiguous. The CLI wires an interactive prompt;
// tests wire a scripted pick.
type TaskGroupChooser func(groups []TaskGroup) (TaskGroup, error)

// ResolveTaskGroup accepts either a task-group ID or a work-requirement ID.
// A direct task-group hit wins; otherwise the reference is retried as a work
// requirement and, when that requirement holds more than one task group, the
// chooser disambiguates.
func ResolveTaskGroup(ctx context.Context, c Client, ref string, choose TaskGroupChooser) (TaskGroup, error) {
	tg, err := c.GetTaskGroup(ctx, ref)
	if err == nil {
		return tg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return TaskGroup{}, err
	}

	wr, werr := c.GetWorkRequirement(ctx, ref)
	if werr != nil {
		if errors.Is(werr, ErrNotFound) {
			return TaskGroup{}, &NotFoundError{Kind: "task group or work requirement", Ref: ref}
		}
		return TaskGroup{}, werr
	}

	switch len(wr.TaskGroups) {
	case 0:
		return TaskGroup{}, fmt.Errorf("platform: work requirement %q has no task groups", ref)
	case 1:
		return wr.TaskGroups[0], nil
	}
	if choose == nil {
		return TaskGroup{}, fmt.Errorf("platform: work requirement %q has %d task groups; a selection is required", ref, len(wr.TaskGroups))
	}
	return choose(wr.TaskGroups)
}
