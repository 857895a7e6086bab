// Package docs contiene la spec swagger servida en /swagger. Se regenera desde
// las anotaciones de los handlers con `go generate ./cmd/api` (swag init).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/clients": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Listar clientes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clients.clientResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Valida nombre (sin números), teléfono (solo dígitos) y email (@vetsoft.com). La dirección es opcional.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Crear cliente",
                "parameters": [
                    {
                        "description": "Datos del cliente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.clientRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/clients.clientResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/clients/{clientID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Obtener cliente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del cliente",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.clientResponse"
                        }
                    },
                    "404": {
                        "description": "client not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "clients"
                ],
                "summary": "Eliminar cliente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del cliente",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "client not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update parcial: los campos vacíos u omitidos conservan el valor actual. Un teléfono no numérico se ignora; un email inválido rechaza el update completo.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Actualizar cliente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del cliente",
                        "name": "clientID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.clientRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.clientResponse"
                        }
                    },
                    "400": {
                        "description": "email inválido",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    },
                    "404": {
                        "description": "client not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/meds": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meds"
                ],
                "summary": "Listar medicamentos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/meds.medResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Nombre, descripción y dosis son obligatorios; la dosis debe estar entre 1 y 10.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meds"
                ],
                "summary": "Crear medicamento",
                "parameters": [
                    {
                        "description": "Datos del medicamento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/meds.medRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/meds.medResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/meds/{medID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meds"
                ],
                "summary": "Obtener medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/meds.medResponse"
                        }
                    },
                    "404": {
                        "description": "med not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "meds"
                ],
                "summary": "Eliminar medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "med not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Revalida el formulario completo: name, desc y dose son obligatorios también al actualizar.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meds"
                ],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/meds.medRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/meds.medResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    },
                    "404": {
                        "description": "med not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Nombre, raza (de la lista) y fecha de nacimiento (YYYY-MM-DD, no futura) son obligatorios.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Crear mascota",
                "parameters": [
                    {
                        "description": "Datos de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.petRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/pets/breeds": {
            "get": {
                "description": "Razas aceptadas por el alta de mascotas, en el orden del formulario.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Listar razas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Obtener mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "pets"
                ],
                "summary": "Eliminar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update parcial. Una fecha inválida o futura rechaza el update; una raza fuera de la lista se ignora.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Actualizar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.petRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "fecha inválida",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/products": {
            "get": {
                "description": "Devuelve los productos y un aviso por cada producto con stock 0.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Listar productos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.productListResponse"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Nombre, tipo, precio y stock son obligatorios. El stock debe ser un entero no negativo.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Crear producto",
                "parameters": [
                    {
                        "description": "Datos del producto",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.productRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/products.productResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/products/{productID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Obtener producto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del producto",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.productResponse"
                        }
                    },
                    "404": {
                        "description": "product not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "products"
                ],
                "summary": "Eliminar producto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del producto",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "product not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update parcial. Si viene stock, debe ser un entero no negativo (si no, 400 y no se toca nada).",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Actualizar producto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del producto",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.productRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.productResponse"
                        }
                    },
                    "400": {
                        "description": "stock inválido",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    },
                    "404": {
                        "description": "product not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/products/{productID}/stock/decrement": {
            "post": {
                "description": "Con stock 0 no hace nada.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Restar una unidad de stock",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del producto",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.productResponse"
                        }
                    },
                    "404": {
                        "description": "product not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/products/{productID}/stock/increment": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Sumar una unidad de stock",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del producto",
                        "name": "productID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.productResponse"
                        }
                    },
                    "404": {
                        "description": "product not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/providers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "providers"
                ],
                "summary": "Listar proveedores",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/providers.providerResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Nombre, email (con \"@\") y dirección son obligatorios.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "providers"
                ],
                "summary": "Crear proveedor",
                "parameters": [
                    {
                        "description": "Datos del proveedor",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/providers.providerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/providers.providerResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/providers/{providerID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "providers"
                ],
                "summary": "Obtener proveedor",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del proveedor",
                        "name": "providerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/providers.providerResponse"
                        }
                    },
                    "404": {
                        "description": "provider not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "providers"
                ],
                "summary": "Eliminar proveedor",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del proveedor",
                        "name": "providerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "provider not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update parcial sin revalidación: los campos vacíos u omitidos conservan el valor actual.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "providers"
                ],
                "summary": "Actualizar proveedor",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del proveedor",
                        "name": "providerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/providers.providerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/providers.providerResponse"
                        }
                    },
                    "404": {
                        "description": "provider not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/veterinaries": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "veterinaries"
                ],
                "summary": "Listar veterinarios",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/veterinaries.veterinaryResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Nombre, teléfono y email (con \"@\") son obligatorios.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "veterinaries"
                ],
                "summary": "Crear veterinario",
                "parameters": [
                    {
                        "description": "Datos del veterinario",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/veterinaries.veterinaryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/veterinaries.veterinaryResponse"
                        }
                    },
                    "400": {
                        "description": "errores por campo",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorsResponse"
                        }
                    }
                }
            }
        },
        "/veterinaries/{veterinaryID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "veterinaries"
                ],
                "summary": "Obtener veterinario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del veterinario",
                        "name": "veterinaryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/veterinaries.veterinaryResponse"
                        }
                    },
                    "404": {
                        "description": "veterinary not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "veterinaries"
                ],
                "summary": "Eliminar veterinario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del veterinario",
                        "name": "veterinaryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "veterinary not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update parcial sin revalidación: los campos vacíos u omitidos conservan el valor actual.",
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "veterinaries"
                ],
                "summary": "Actualizar veterinario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del veterinario",
                        "name": "veterinaryID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/veterinaries.veterinaryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/veterinaries.veterinaryResponse"
                        }
                    },
                    "404": {
                        "description": "veterinary not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "clients.clientRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "clients.clientResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "meds.medRequest": {
            "type": "object",
            "properties": {
                "desc": {
                    "type": "string"
                },
                "dose": {
                    "type": "string",
                    "example": "2.5"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "meds.medResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "desc": {
                    "type": "string"
                },
                "dose": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "pets.Breed": {
            "type": "string",
            "enum": [
                "Perro",
                "Gato",
                "Conejo",
                "Pájaro",
                "Pez",
                "Otro"
            ],
            "x-enum-varnames": [
                "BreedPerro",
                "BreedGato",
                "BreedConejo",
                "BreedPajaro",
                "BreedPez",
                "BreedOtro"
            ]
        },
        "pets.petRequest": {
            "type": "object",
            "properties": {
                "birthday": {
                    "type": "string",
                    "example": "2020-01-31"
                },
                "breed": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/pets.Breed"
                        }
                    ],
                    "example": "Perro"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "birthday": {
                    "type": "string",
                    "example": "2020-01-31"
                },
                "breed": {
                    "$ref": "#/definitions/pets.Breed"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "products.productListResponse": {
            "type": "object",
            "properties": {
                "products": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/products.productResponse"
                    }
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "products.productRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "1500.50"
                },
                "stock": {
                    "type": "string",
                    "example": "10"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "products.productResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                },
                "stock": {
                    "type": "integer"
                },
                "type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "providers.providerRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "providers.providerResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "veterinaries.veterinaryRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "veterinaries.veterinaryResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "web.ErrorsResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vetsoft API",
	Description:      "Alta, edición y baja de clientes, productos, proveedores, veterinarios, mascotas y medicamentos de la clínica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
