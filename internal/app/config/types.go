package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                          string
		Port                         string
		Version                      string
		Address                      string
		Timezone                     string
		EndpointPrefix               string
		FrontendDomain               string
		MaxRequests                  int
		ShutdownTimeout              int
		MaxTimeRequestsPerSeconds    int
		RequestBodyLimitInMegabyte   int
		SessionExpTimeInHour         int
		RegistrationDraftTTLInMinute int
		NotificationQueue            string
		ProfilePictureBucket         string
	}

	JWT struct {
		Secret string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
