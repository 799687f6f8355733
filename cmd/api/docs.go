package main

// @title Pets API
// @version 1.0
// @description API JSON de usuarios y mascotas sobre un store en memoria sembrable.
// @BasePath /api
