package util

const DateFormat = "2006-01-02"

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageDatabase = "database"
	StorageMinio    = "minio"
	StorageOSS      = "oss"
)

// 每日学习时长：表单限制与生成接口限制不同
const (
	StudyHoursFormMin     = 1
	StudyHoursFormMax     = 16
	StudyHoursContractMin = 0
	StudyHoursContractMax = 24
)
