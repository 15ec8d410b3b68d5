package config

type config struct {
	Server   server
	Mysql    mysql
	Redis    redis
	RabbitMq rabbitmq
	Jwt      jwt
}

type server struct {
	Addr string
}

type mysql struct {
	Addr     string
	Database string
	Username string
	Password string
	Charset  string
}

type redis struct {
	Addr     string
	Password string
}

type rabbitmq struct {
	Addr     string
	Username string
	Password string
}

type jwt struct {
	AccessSecret string
	ExpireHours  int
}
