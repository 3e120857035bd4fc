package config

// MaxPresignExpiration : предел срока жизни presigned URL в S3/MinIO (7 дней)
const MaxPresignExpiration = 604800

type SignatureVersion string

const (
	SignatureV4 SignatureVersion = "s3v4"
	SignatureV2 SignatureVersion = "s3v2"
)

// S3Config : настройки MinIO/S3 хранилища. После загрузки не изменяется
type S3Config struct {
	Endpoint          string           `yaml:"endpoint" env:"MINIO_ENDPOINT_URL"`
	AccessKeyID       string           `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey   string           `yaml:"access_key_secret" env:"MINIO_ACCESS_KEY_SECRET"`
	Region            string           `yaml:"region" env:"S3_BUCKET_REGION"`
	DisableTLSVerify  bool             `yaml:"disable_ssl_verify" env:"MINIO_DISABLE_SSL_VERIFY"`
	Bucket            string           `yaml:"bucket" env:"S3_BUCKET_NAME"`
	BucketML          string           `yaml:"bucket_ml" env:"ML_S3_BUCKET_NAME"`
	DefaultExpiration int              `yaml:"expiration_offset" env:"S3_EXPIRATION_OFFSET"`
	MaxExpiration     int              `yaml:"max_expiration_offset" env:"S3_MAX_EXPIRATION_OFFSET"`
	SignatureVersion  SignatureVersion `yaml:"signature_version" env:"S3_SIGNATURE_VERSION"`
}

type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"JWT_SECRET_KEY"`
	AdminToken string `yaml:"admin_token" env:"ADMIN_TOKEN"`
}

type LoggerConfig struct {
	Encoding string `yaml:"encoding" env:"LOG_ENCODING"`
	Level    string `yaml:"level" env:"LOG_LEVEL"`
}
