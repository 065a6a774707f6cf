// Package docs provides generated OpenAPI documentation.
//
// toolcontent API
//
//	@title			toolcontent API
//	@version		1.0
//	@description	Content generation backend for blog articles and LinkedIn posts.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/DISIA-TECH/tool-content-backend
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8000
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/toolcontent/serve.go -o ./swagger --parseDependency --parseInternal
