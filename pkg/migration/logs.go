package migration

type infoEvent struct {
	Message string `logevent:"message,default=io-migration-info"`
}

type errorEvent struct {
	Message string `logevent:"message,default=io-migration-error"`
}

type runStarted struct {
	From      string `logevent:"from"`
	To        string `logevent:"to"`
	Total     int    `logevent:"total"`
	BulkCount int    `logevent:"bulk_count"`
	DryRun    bool   `logevent:"dry_run"`
	Message   string `logevent:"message,default=io-migration-started"`
}

type runFinished struct {
	Total    int    `logevent:"total"`
	Migrated int    `logevent:"migrated"`
	Missing  int    `logevent:"missing"`
	Failed   int    `logevent:"failed"`
	Elapsed  string `logevent:"elapsed"`
	Message  string `logevent:"message,default=io-migration-finished"`
}
