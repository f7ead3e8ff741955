package models

type DashboardStats struct {
	TotalChecks    int
	BreachedChecks int
	CleanChecks    int
	FailedChecks   int
	UniquePrefixes int
}
