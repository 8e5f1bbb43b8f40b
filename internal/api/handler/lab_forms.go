package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Toasts shown once a form is accepted.
const (
	titleSampleCreated        = "Sample created"
	msgSampleCreated          = "Your sample has been successfully created."
	titleLabResultRecorded    = "Data submitted successfully"
	msgLabResultRecorded      = "Sample %s has been recorded in the %s laboratory."
	titleProfileUpdated       = "Profile updated"
	msgProfileUpdated         = "Your profile information has been updated successfully."
	titleNotificationsUpdated = "Notification preferences updated"
	msgNotificationsUpdated   = "Your notification preferences have been saved."
)

// CreateSample validates a sample intake form.
//
// @Summary      Submit a new sample
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        body  body      sampleRequest  true  "Sample intake form"
// @Success      200   {object}  acknowledgement
// @Failure      303   {object}  domain.Decision
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /samples [post]
func (h *LabHandler) CreateSample(c echo.Context) error {
	var req sampleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acknowledgement{Title: titleSampleCreated, Description: msgSampleCreated})
}

// RecordLabResult validates a clinical or research lab result.
//
// @Summary      Submit a lab result
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        body  body      labResultRequest  true  "Lab result form"
// @Success      200   {object}  acknowledgement
// @Failure      303   {object}  domain.Decision
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /laboratory/results [post]
func (h *LabHandler) RecordLabResult(c echo.Context) error {
	var req labResultRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acknowledgement{
		Title:       titleLabResultRecorded,
		Description: fmt.Sprintf(msgLabResultRecorded, req.SampleID, req.LabType),
	})
}

// UpdateProfile validates the profile settings form.
//
// @Summary      Update profile settings
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile form"
// @Success      200   {object}  acknowledgement
// @Failure      303   {object}  domain.Decision
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /settings/profile [post]
func (h *LabHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acknowledgement{Title: titleProfileUpdated, Description: msgProfileUpdated})
}

// UpdateNotifications echoes the notification preferences with defaults
// applied to anything the form left out.
//
// @Summary      Update notification preferences
// @Tags         lab
// @Accept       json
// @Produce      json
// @Param        body  body      notificationsRequest  true  "Notification toggles"
// @Success      200   {object}  notificationsResponse
// @Failure      303   {object}  domain.Decision
// @Failure      400   {object}  errorResponse
// @Router       /settings/notifications [post]
func (h *LabHandler) UpdateNotifications(c echo.Context) error {
	var req notificationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, notificationsResponse{
		Title:       titleNotificationsUpdated,
		Description: msgNotificationsUpdated,
		Preferences: req.resolve(),
	})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
