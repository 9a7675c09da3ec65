/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/GroSafe/ReportV1/cmd"

// @title           GroSafe Incident Report API
// @version         1.0.0
// @description     An incident reporting API with speech transcription, translation and speech synthesis
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/GroSafe/ReportV1
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
