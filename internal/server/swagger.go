package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title Phishscope API
// @version 0.1
// @description Interactive documentation for the Phishscope URL assessment API.
// @contact.name Phishscope Maintainers
// @contact.url https://github.com/raysh454/phishscope
// @BasePath /
