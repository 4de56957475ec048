package formats

import "github.com/darbi-a/zabbix/pkg/constant"

// profile lists what differs between format versions. The entity builders
// read it instead of branching on version strings.
type profile struct {
	version string

	// opdata is the trigger operational data field.
	opdata bool
	// lldMacroPaths enables discovery rule lld_macro_paths.
	lldMacroPaths bool
	// errorHandler enables error_handler and error_handler_params on
	// preprocessing steps.
	errorHandler bool
	// discoveryPreprocessing enables preprocessing on discovery rules.
	discoveryPreprocessing bool

	steps *constant.Enum
}

var (
	profile40 = profile{
		version: "4.0",
		steps: constant.PreprocessingStepType.Without(
			constant.StepDiscardUnchanged,
			constant.StepDiscardUnchangedHeartbeat,
			constant.StepJavaScript,
			constant.StepPrometheusPattern,
			constant.StepPrometheusToJSON,
		),
	}

	profile42 = profile{
		version:                "4.2",
		lldMacroPaths:          true,
		errorHandler:           true,
		discoveryPreprocessing: true,
		steps:                  constant.PreprocessingStepType,
	}

	profile44 = profile{
		version:                "4.4",
		opdata:                 true,
		lldMacroPaths:          true,
		errorHandler:           true,
		discoveryPreprocessing: true,
		steps:                  constant.PreprocessingStepType,
	}
)
