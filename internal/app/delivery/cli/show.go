package cli

import (
	"context"
	"patient-viewer-service/internal/app/services/core/patients"
	"patient-viewer-service/internal/pkg/dto/responses"

	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <patient-id>",
		Short: "Show the details of one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd.Context(), args[0])
		},
	}
}

func (a *app) runShow(ctx context.Context, patientID string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	controller := patients.NewDetailController(a.client(), a.log)
	defer controller.Close()

	view := controller.Navigate(ctx, patientID)
	if view.Patient == nil {
		if view.State == responses.ViewStateFailed {
			printBanner(a.errOut, view.Error)
		}
		printFallback(a.out, view.Fallback)
		if view.State == responses.ViewStateFailed {
			return ErrViewFailed
		}
		return nil
	}

	renderPatientRecord(a.out, view.Patient)
	return nil
}
