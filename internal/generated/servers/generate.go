package servers

//go:generate oapi-codegen --config=cfg.yaml ../../../api/openapi.yml
