package client

import (
	"context"
	"fmt"
	"net/http"
)

// Department mirrors the API's department DTO.
type Department struct {
	DepartmentID   int    `json:"departmentId"`
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
}

type DepartmentsClient struct {
	c *Client
}

func (d *DepartmentsClient) List(ctx context.Context) ([]Department, error) {
	var depts []Department
	if err := d.c.listCached(ctx, Departments, "/departments", &depts); err != nil {
		return nil, err
	}
	return depts, nil
}

func (d *DepartmentsClient) Get(ctx context.Context, id int) (Department, error) {
	var dept Department
	err := d.c.do(ctx, http.MethodGet, fmt.Sprintf("/departments/%d", id), nil, &dept)
	return dept, err
}

func (d *DepartmentsClient) Create(ctx context.Context, dept Department) (Department, error) {
	var created Department
	if err := d.c.do(ctx, http.MethodPost, "/departments", dept, &created); err != nil {
		return Department{}, err
	}
	d.c.afterMutation(Departments, OpCreate)
	return created, nil
}

func (d *DepartmentsClient) Update(ctx context.Context, dept Department) error {
	path := fmt.Sprintf("/departments/%d", dept.DepartmentID)
	if err := d.c.do(ctx, http.MethodPut, path, dept, nil); err != nil {
		return err
	}
	d.c.afterMutation(Departments, OpUpdate)
	return nil
}

func (d *DepartmentsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/departments/%d", id)
	if err := d.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	d.c.afterMutation(Departments, OpDelete)
	return nil
}
