package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 评估结果持久化驱动
const (
	SinkMongo    = "mongo"
	SinkMySQL    = "mysql"
	SinkPostgres = "postgres"
	SinkSQLite   = "sqlite"
	SinkFile     = "file"
	SinkNone     = "none"
)

const RoleAdmin = "admin"

// 排行榜条数限制
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)
