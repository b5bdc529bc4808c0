package main

// @title           Gordo Salgados API
// @version         1.0
// @description     API do painel administrativo e do cardápio público da Gordo Salgados

// @contact.name   Gordo Salgados
// @contact.url    https://wa.me/5586998532928

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
// @description Cookie de sessão gravado pelo login
