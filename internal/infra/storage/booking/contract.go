package booking

import "github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"

// DBExecutor переиспользует интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
