package docs

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --generalInfo internal/app/http.go --dir ../../ --output . --outputTypes go,json,yaml --parseInternal
