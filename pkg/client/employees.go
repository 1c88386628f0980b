package client

import (
	"context"
	"fmt"
	"net/http"
)

// Employee mirrors the API's employee DTO. Age and DepartmentName are
// computed server-side and only populated on reads.
type Employee struct {
	EmployeeID     int     `json:"employeeId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	EmailAddress   string  `json:"emailAddress"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Age            int     `json:"age,omitempty"`
	Salary         float64 `json:"salary"`
	DepartmentID   int     `json:"departmentId"`
	DepartmentName string  `json:"departmentName,omitempty"`
	PhoneNumber    string  `json:"phoneNumber,omitempty"`
	Address        string  `json:"address,omitempty"`
	IsActive       bool    `json:"isActive"`
}

type EmployeesClient struct {
	c *Client
}

func (e *EmployeesClient) List(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	if err := e.c.listCached(ctx, Employees, "/employees", &empls); err != nil {
		return nil, err
	}
	return empls, nil
}

func (e *EmployeesClient) Get(ctx context.Context, id int) (Employee, error) {
	var empl Employee
	err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &empl)
	return empl, err
}

func (e *EmployeesClient) Create(ctx context.Context, empl Employee) (Employee, error) {
	var created Employee
	if err := e.c.do(ctx, http.MethodPost, "/employees", empl, &created); err != nil {
		return Employee{}, err
	}
	e.c.afterMutation(Employees, OpCreate)
	return created, nil
}

func (e *EmployeesClient) Update(ctx context.Context, empl Employee) error {
	path := fmt.Sprintf("/employees/%d", empl.EmployeeID)
	if err := e.c.do(ctx, http.MethodPut, path, empl, nil); err != nil {
		return err
	}
	e.c.afterMutation(Employees, OpUpdate)
	return nil
}

func (e *EmployeesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/employees/%d", id)
	if err := e.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	e.c.afterMutation(Employees, OpDelete)
	return nil
}
