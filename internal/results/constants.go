package results

const (
	// ColumnID is the CSV column naming the test case that produced a row.
	// Shared with the results-producing subsystem; reports match this value
	// against test-case configuration names.
	ColumnID = "id"
	// ColumnDeployment is the CSV column naming the deployment scenario a
	// row was measured under.
	ColumnDeployment = "deployment"
)
