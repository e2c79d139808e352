// Cinecatalog - Movie Catalog API and Infinite-Scroll Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinecatalog

// Swagger general API annotations, read by swag init to generate docs/.
//
// @title Cinecatalog API
// @version 1.0
// @description Movie catalog with filtered pagination, analytics and recommendations.
// @description
// @description Every response uses the envelope {success, data, meta?, error?, code?}.
// @description Listing responses carry meta {total, page, pageSize, hasMore}.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinecatalog/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Health and status
//
// @tag.name Movies
// @tag.description Catalog listing, lookup and editing
//
// @tag.name Analytics
// @tag.description Catalog-wide aggregates
package main
