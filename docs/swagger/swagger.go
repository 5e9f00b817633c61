// Package swagger регистрирует OpenAPI спецификацию сервиса.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": ["http", "https"],
    "swagger": "2.0",
    "info": {
        "description": "Сервис оценки мест OpenStreetMap с веганской/вегетарианской маркировкой. Классифицирует места по diet:* тегам, нормализует атрибуты отображения, строит отчёты о качестве данных (GeoJSON) и импортирует выгрузки Overpass.",
        "title": "Veggie Places Microservice API",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "1.0.0"
    },
    "basePath": "/",
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Veggie Places Microservice API",
	Description:      "Сервис оценки мест OpenStreetMap с веганской/вегетарианской маркировкой.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
