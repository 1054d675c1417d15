package utils

import (
	"fmt"
	"os"

	"gb2gh/internal/errcodes"
	"gb2gh/internal/systemcodes"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var configErrors = []error{
	errcodes.ErrMissingSourceURL,
	errcodes.ErrMissingSourceToken,
	errcodes.ErrMissingTargetURL,
	errcodes.ErrMissingTargetToken,
	errcodes.ErrMissingOwner,
	errcodes.ErrMissingMasterBranch,
	errcodes.ErrUnknownStateFilter,
}

func ExitCode(err error) int {
	for _, e := range configErrors {
		if errors.Is(err, e) {
			return systemcodes.ErrorCodeConfig
		}
	}

	return systemcodes.ErrorCodeGeneric
}

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitCode(err))
		}
	}
}

func PromptConfirm(message string) (bool, error) {
	answer := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	err := survey.AskOne(prompt, &answer)
	if err != nil {
		return false, err
	}

	return answer, nil
}
