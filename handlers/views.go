package handlers

import "project-manager-service/models"

// Izlazni oblici odgovora. Datumi se serijalizuju kao "2006-01-02".

type UserView struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ProjectView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type TaskView struct {
	Project     ProjectView `json:"project"`
	AssignedTo  UserView    `json:"assigned_to"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     string      `json:"due_date"`
	Status      string      `json:"status"`
}

func newUserView(user models.User) UserView {
	return UserView{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func newProjectView(project models.Project) ProjectView {
	return ProjectView{
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate.Format(models.DateLayout),
		EndDate:     project.EndDate.Format(models.DateLayout),
		Status:      string(project.Status),
	}
}

func newTaskView(task models.Task) TaskView {
	view := TaskView{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.Format(models.DateLayout),
		Status:      string(task.Status),
	}
	if task.Project != nil {
		view.Project = newProjectView(*task.Project)
	}
	if task.Assignee != nil {
		view.AssignedTo = newUserView(*task.Assignee)
	}
	return view
}

func newTaskViews(tasks []models.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, newTaskView(task))
	}
	return views
}
