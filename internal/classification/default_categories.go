package classification

import "github.com/Veraticus/kurmi-workspace/internal/model"

// SentinelFile is the export manifest that is never classified.
const SentinelFile = "workspace.txt"

// ScenariosCategory holds scenario files; it is exempt from vendor census and pruning.
const ScenariosCategory = "scenarios"

// DefaultCategories returns the workspace taxonomy in canonical order.
// The order decides which category wins when a file matches more than one.
func DefaultCategories() []model.Category {
	return []model.Category{
		{
			ID:          "service_definitions",
			Description: "Kurmi service definitions",
			Patterns:    []string{"*.service.xml", "*.serviceorder.json"},
		},
		{
			ID:          "service_inference",
			Description: "Kurmi service inference files",
			Patterns:    []string{"*.inference.js"},
		},
		{
			ID:          "quickfeatures",
			Description: "QuickFeature files (JS/XML/properties)",
			Patterns:    []string{"*.quickfeature.xml", "*.quickfeature.js", "*.quickfeature.properties"},
		},
		{
			ID:          "js_libraries",
			Description: "JavaScript libraries and utilities",
			Patterns:    []string{"*.util.js", "*.apiutil.js", "*.postProcessing.js", "*.builtin.util.js"},
		},
		{
			ID:          "widgets",
			Description: "Widget files",
			Patterns:    []string{"*.widget.js"},
		},
		{
			ID:          ScenariosCategory,
			Description: "Scenario files, schemas, rules, and related libraries",
			Patterns: []string{
				"*.scenario.json",
				"*.schema.json",
				"*.rules.json",
				"*.data.json",
				"*.options.json",
				"*.choice.json",
				"*.kurmiApi.js",
				"*.configuration.js",
				"*.import.js",
				"*.export.js",
				"*.externalTask.js",
				"*.processing.js",
				"*.discovery.js",
				"*.ruleSet.json",
				"*.componentAdjustment.js",
				"*.mergeAdjust.js",
			},
		},
		{
			ID:          "connectors",
			Description: "Connector files (XML/properties)",
			Patterns:    []string{"*.advancedConnector.xml", "*.connector.xml", "*.connector.properties"},
		},
		{
			ID:          "directory_connectors",
			Description: "Directory connector files",
			Patterns:    []string{"*.directoryModel.xml"},
		},
		{
			ID:          "emails",
			Description: "Email template files",
			Patterns:    []string{"*.mail.js"},
		},
	}
}
