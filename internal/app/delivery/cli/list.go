package cli

import (
	"context"
	"errors"
	"fmt"
	"patient-viewer-service/internal/app/services/core/patients"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/requests"
	"patient-viewer-service/internal/pkg/dto/responses"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func (a *app) listCmd(defaultRetrieveCount int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, optionally filtered by name, id or gender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &requests.PatientList{
				SearchTerm:    a.v.GetString(keySearch),
				RetrieveCount: a.v.GetInt(keyCount),
				Page:          a.v.GetInt(keyPage),
			}
			if err := utils.ValidateStruct(request); err != nil {
				return errors.New(exceptions.FormatFirstValidationError(err))
			}
			return a.runList(cmd.Context(), request)
		},
	}

	flags := cmd.Flags()
	flags.Int(keyCount, defaultRetrieveCount, fmt.Sprintf("records to retrieve, one of %v", constvars.PatientListRetrieveOptions))
	flags.String(keySearch, "", "case-insensitive filter on name, id or gender")
	flags.Int(keyPage, 1, "page to show")
	for _, key := range []string{keyCount, keySearch, keyPage} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
	return cmd
}

func (a *app) runList(ctx context.Context, request *requests.PatientList) error {
	if ctx == nil {
		ctx = context.Background()
	}

	controller := patients.NewListController(a.client(), a.log, request.RetrieveCount)
	defer controller.Close()

	view := controller.Sync(ctx, requests.PatientListParams{
		RetrieveCount: request.RetrieveCount,
		SearchTerm:    request.SearchTerm,
	})
	if view.State == responses.ViewStateFailed {
		printBanner(a.errOut, view.Error)
		return ErrViewFailed
	}

	view = controller.SetPage(request.Page)
	renderPatientList(a.out, view)
	return nil
}
